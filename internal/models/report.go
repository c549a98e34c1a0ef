package models

import (
	"time"
)

// PropertyReport is the end-of-game performance snapshot of one property
type PropertyReport struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Group               string  `json:"group"`
	Owner               string  `json:"owner,omitempty"`
	Mortgaged           bool    `json:"mortgaged"`
	Improvements        int     `json:"improvements"`
	Landings            int     `json:"landings"`
	Net                 int     `json:"net"`
	ReturnPerEvent      float64 `json:"returnPerEvent"`
	RiskAdjustedReturn  float64 `json:"riskAdjustedReturn"`
	RiskAdjustedDefined bool    `json:"riskAdjustedDefined"`
}

// Standing is a player's final position
type Standing struct {
	Name       string       `json:"name"`
	Cash       int          `json:"cash"`
	Status     PlayerStatus `json:"status"`
	Properties int          `json:"properties"`
	Mortgaged  int          `json:"mortgaged"`
}

// GameReport summarizes a finished game
type GameReport struct {
	GameID      string           `json:"gameId"`
	Status      GameStatus       `json:"status"`
	Turns       int              `json:"turns"`
	Winner      string           `json:"winner,omitempty"`
	Standings   []Standing       `json:"standings"`
	Properties  []PropertyReport `json:"properties"`
	CompletedAt time.Time        `json:"completedAt"`
}
