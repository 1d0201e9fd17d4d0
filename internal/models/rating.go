package models

import "time"

type Rating struct {
	ID             string    `db:"id" json:"id"`
	SpotID         string    `db:"spot_id" json:"spotId"`
	UserID         string    `db:"user_id" json:"userId"`
	Score          int       `db:"score" json:"score"` // 1-5
	SummaryComment string    `db:"summary_comment" json:"summaryComment"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

type RatingInput struct {
	Score          int    `json:"score" binding:"required,min=1,max=5"`
	SummaryComment string `json:"summaryComment" binding:"required,min=1,max=500"`
}
