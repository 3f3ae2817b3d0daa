// Package cookies defines the serialized form session cookies take at
// rest. The same envelope is used for inline cookie secrets and for the
// persisted cookie stores, so a set captured in one place replays
// anywhere.
package cookies

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/feedkeeper/internal/domain"
)

const currentSchemaVersion = 1

type cookieFile struct {
	Version int            `json:"version"`
	Cookies []cookieRecord `json:"cookies"`
}

type cookieRecord struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain,omitempty"`
	Path     string    `json:"path,omitempty"`
	Expires  time.Time `json:"expires"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"http_only,omitempty"`
	SameSite string    `json:"same_site,omitempty"`
}

// Encode serializes cookies into the versioned envelope.
func Encode(cookies []domain.Cookie) ([]byte, error) {
	envelope := cookieFile{
		Version: currentSchemaVersion,
		Cookies: make([]cookieRecord, 0, len(cookies)),
	}
	for _, cookie := range cookies {
		envelope.Cookies = append(envelope.Cookies, cookieRecord{
			Name:     cookie.Name,
			Value:    cookie.Value,
			Domain:   cookie.Domain,
			Path:     cookie.Path,
			Expires:  cookie.Expires,
			Secure:   cookie.Secure,
			HTTPOnly: cookie.HTTPOnly,
			SameSite: cookie.SameSite,
		})
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encode cookies: %w", err)
	}

	return data, nil
}

// Decode parses a versioned cookie envelope.
func Decode(data []byte) ([]domain.Cookie, error) {
	if len(data) == 0 {
		return nil, errors.New("cookie payload is empty")
	}

	var envelope cookieFile
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode cookies: %w", err)
	}
	if envelope.Version > currentSchemaVersion {
		return nil, fmt.Errorf("unsupported cookie schema version %d (current %d)", envelope.Version, currentSchemaVersion)
	}

	cookies := make([]domain.Cookie, 0, len(envelope.Cookies))
	for _, record := range envelope.Cookies {
		if record.Name == "" {
			continue
		}
		cookies = append(cookies, domain.Cookie{
			Name:     record.Name,
			Value:    record.Value,
			Domain:   record.Domain,
			Path:     record.Path,
			Expires:  record.Expires,
			Secure:   record.Secure,
			HTTPOnly: record.HTTPOnly,
			SameSite: record.SameSite,
		})
	}

	return cookies, nil
}
