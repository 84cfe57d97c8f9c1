package monitor

import "time"

type Status struct {
	Blob            bool      `json:"blob"`
	GoalCollections int       `json:"goal_collections"`
	RedisEnabled    bool      `json:"redis_enabled"`
	Redis           bool      `json:"redis"`
	LastCheck       time.Time `json:"last_check"`
}
