package repositories

import (
	"database/sql"
	"encoding/json"
	"log"

	"mistriBack/internal/models"
)

// skills, social_links and portfolio_images are stored as JSON text columns.
// Decode failures are logged and treated as empty, never fatal to a read.

func decodeStringList(column sql.NullString) []string {
	if !column.Valid || column.String == "" || column.String == "null" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(column.String), &list); err != nil {
		log.Printf("failed to decode string list column: %v", err)
		return nil
	}
	return list
}

func encodeStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		log.Printf("failed to encode string list column: %v", err)
		return "[]"
	}
	return string(data)
}

func decodeSocialLinks(column sql.NullString) *models.SocialLinks {
	if !column.Valid || column.String == "" || column.String == "null" {
		return nil
	}
	var links models.SocialLinks
	if err := json.Unmarshal([]byte(column.String), &links); err != nil {
		log.Printf("failed to decode social links column: %v", err)
		return nil
	}
	if links == (models.SocialLinks{}) {
		return nil
	}
	return &links
}

func encodeSocialLinks(links *models.SocialLinks) string {
	if links == nil {
		return "{}"
	}
	data, err := json.Marshal(links)
	if err != nil {
		log.Printf("failed to encode social links column: %v", err)
		return "{}"
	}
	return string(data)
}
