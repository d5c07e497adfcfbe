package db

import "time"

// Check is one completed version check.
type Check struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Root          string    `gorm:"index" json:"root"`
	Location      string    `json:"location"`
	GameID        string    `json:"game_id"`
	InstalledName string    `json:"installed_name"`
	InstalledTime string    `json:"installed_time"`
	Latest        string    `json:"latest"`
	Comparison    string    `json:"comparison"`
	Digest        string    `json:"digest,omitempty"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

// Setting is a key/value pair remembered between runs.
type Setting struct {
	Name  string `gorm:"primaryKey" json:"name"`
	Value string `json:"value"`
}

// KeyLastRoot holds the last location the user picked interactively.
const KeyLastRoot = "last_root"
