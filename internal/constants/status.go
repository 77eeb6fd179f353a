package constants

type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskStatusAll is the filter sentinel matching every task status.
const TaskStatusAll = "all"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

type MessageType string

const (
	MessageText         MessageType = "text"
	MessageContactShare MessageType = "contact_share"
)

type ConnectionStatus string

const (
	ConnectionConnected ConnectionStatus = "connected"
	ConnectionWorking   ConnectionStatus = "working"
	ConnectionCompleted ConnectionStatus = "completed"
)

type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pending"
	NotificationDelivered NotificationStatus = "delivered"
)
