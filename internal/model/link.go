package model

import "time"

// Link is a stored short link. FullShortURL (domain + "/" + ShortURI) is unique.
type Link struct {
	ID           int64
	Domain       string
	ShortURI     string
	FullShortURL string
	OriginURL    string
	Gid          string
	Describe     string
	CreatedAt    time.Time
}

// CreateLinkRequest is the body of a create request.
type CreateLinkRequest struct {
	Domain    string `json:"domain"`
	OriginURL string `json:"originUrl"`
	Gid       string `json:"gid"`
	Describe  string `json:"describe"`
}

// CreateLinkResponse is returned after a link was created.
type CreateLinkResponse struct {
	FullShortURL string `json:"fullShortUrl"`
	OriginURL    string `json:"originUrl"`
	Gid          string `json:"gid"`
}

// Visit describes the client that resolved a link.
type Visit struct {
	RemoteAddr string
	UserAgent  string
}
