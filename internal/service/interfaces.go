package service

import "github.com/alexanderramin/shiftpace/internal/app"

type SettingsService interface {
	app.SettingsUseCase
}

type ActualsService interface {
	app.ActualsUseCase
}

type PaceService interface {
	app.PaceUseCase
}

type HistoryService interface {
	app.HistoryUseCase
}
