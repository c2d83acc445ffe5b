package model

import "time"

// StatsMessage is published for every resolved link. Keys is unique per
// message and serves as its idempotency id.
type StatsMessage struct {
	Keys         string    `json:"keys"`
	FullShortURL string    `json:"fullShortUrl"`
	RemoteAddr   string    `json:"remoteAddr"`
	UserAgent    string    `json:"userAgent"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// AccessLog is one persisted link visit.
type AccessLog struct {
	MessageKey   string
	FullShortURL string
	RemoteAddr   string
	UserAgent    string
	OccurredAt   time.Time
}

// AccessLog converts the message to its persisted form.
func (m StatsMessage) AccessLog() AccessLog {
	return AccessLog{
		MessageKey:   m.Keys,
		FullShortURL: m.FullShortURL,
		RemoteAddr:   m.RemoteAddr,
		UserAgent:    m.UserAgent,
		OccurredAt:   m.OccurredAt,
	}
}
