package worker

import "time"

// Position is the closed set of staff position codes.
type Position string

const (
	PositionManager          Position = "manager"
	PositionAssistantManager Position = "assistant_manager"
	PositionAdvisor          Position = "advisor"
	PositionLeader           Position = "leader"
	PositionCrew             Position = "crew"
	PositionCleaner          Position = "cleaner"
	PositionSystem           Position = "system"
)

func (p Position) IsValid() bool {
	switch p {
	case PositionManager, PositionAssistantManager, PositionAdvisor,
		PositionLeader, PositionCrew, PositionCleaner, PositionSystem:
		return true
	}
	return false
}

// IsAdmin reports whether the position carries administrative privileges.
func (p Position) IsAdmin() bool {
	return p == PositionManager || p == PositionAssistantManager || p == PositionSystem
}

// Gender is the closed set of gender codes.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

type Worker struct {
	ID            int64
	Username      string
	PasswordHash  string
	Name          string
	Position      Position
	Gender        *Gender
	Phone         *string
	Email         *string
	BankName      *string
	AccountNumber *string
	HireDate      *time.Time
	RetireDate    *time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
