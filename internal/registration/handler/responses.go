package handler

import "onutec/internal/registration/models"

type createCommitteeRequest struct {
	Name   string `json:"name"`
	Period string `json:"period"`
}

type createSlotRequest struct {
	Name string `json:"name"`
}

type periodsResponse struct {
	Periods []string `json:"periods"`
}

type committeesResponse[T any] struct {
	Committees []T `json:"committees"`
}

type slotsResponse[T any] struct {
	Slots []T `json:"slots"`
}

type registrationsResponse struct {
	Registrations []models.RegistrationView `json:"registrations"`
}
