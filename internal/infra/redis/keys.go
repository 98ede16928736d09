package redis

import "github.com/google/uuid"

const keyPrefix = "court:v1:"

func KeyVenue(id uuid.UUID) string {
	return keyPrefix + "venue:" + id.String()
}

func KeySport(id uuid.UUID) string {
	return keyPrefix + "sport:" + id.String()
}
