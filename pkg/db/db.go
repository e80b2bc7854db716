package db

import (
	"fmt"
	"net/url"

	"github.com/tuncanbit/bss/pkg/config"
)

func GetDBDSN(config *config.DatabaseConfig) string {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(config.User),
		url.QueryEscape(config.Password),
		config.Host,
		config.Port,
		config.DBName,
		sslMode,
	)
}
