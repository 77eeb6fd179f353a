package dto

import (
	model "neighbortask.com/neighbortask/internal/models"
	"neighbortask.com/neighbortask/internal/services"
)

type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type TaskDetailsResponse struct {
	Task         model.Task          `json:"task"`
	Applications []model.Application `json:"applications"`
}

type ProfileTasksResponse struct {
	Posted  []model.Task `json:"posted"`
	Applied []model.Task `json:"applied"`
}

type ConnectionsResponse struct {
	Count       int                       `json:"count"`
	Connections []services.ConnectionView `json:"connections"`
}
