package views

import "github.com/rs/zerolog/log"

// Notifier shows short success and error messages to the user.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to the global zerolog logger.
type LogNotifier struct{}

func (LogNotifier) Success(message string) {
	log.Info().Msg(message)
}

func (LogNotifier) Error(message string) {
	log.Error().Msg(message)
}
