package entities

import "github.com/google/uuid"

// UserProfile is keyed by the auth provider's user id. It is written once,
// when the questionnaire is submitted.
type UserProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Height        float64   `json:"height"`
	Weight        float64   `json:"weight"`
	TargetWeight  float64   `json:"target_weight"`
	Age           int       `json:"age"`
	Gender        string    `gorm:"type:varchar(10)" json:"gender"`
	ActivityLevel string    `gorm:"type:varchar(20)" json:"activity_level"`
	WeightGoal    string    `gorm:"type:varchar(10)" json:"weight_goal"`
	WeightRate    float64   `json:"weight_rate"`

	Timestamp
}

type UserTarget struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Calories int       `json:"calories"`
	Protein  int       `json:"protein"`
	Carbs    int       `json:"carbs"`
	Fat      int       `json:"fat"`

	Timestamp
}
