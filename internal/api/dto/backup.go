package dto

import "time"

type BackupResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Files     []string  `json:"files"`
}

type RestoreBackupResponse struct {
	ID       string   `json:"id"`
	Restored []string `json:"restored"`
}
