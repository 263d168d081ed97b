package domain

import "time"

type HealthStatus struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Uptime       float64   `json:"uptime"`
	RedisHealthy bool      `json:"redis_healthy"`
	Sessions     int       `json:"sessions"`
}
