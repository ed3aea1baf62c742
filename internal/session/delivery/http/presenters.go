package http

import (
	"taskboard/internal/model"
	"taskboard/internal/session"
)

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerReq struct {
	Username         string `json:"username" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Password         string `json:"password" binding:"required"`
	RepeatedPassword string `json:"repeated_password" binding:"required"`
}

func (r registerReq) toInput() session.RegisterInput {
	return session.RegisterInput{
		Username:         r.Username,
		Email:            r.Email,
		Password:         r.Password,
		RepeatedPassword: r.RepeatedPassword,
	}
}

type guardReq struct {
	Page string `form:"page"`
}

// sessionResp never exposes the token itself.
type sessionResp struct {
	State            model.SessionState `json:"state"`
	CurrentUserIndex int64              `json:"currentUserIndex"`
	Username         string             `json:"username,omitempty"`
	Email            string             `json:"email,omitempty"`
	Guest            bool               `json:"guest"`
	Redirect         string             `json:"redirect,omitempty"`
}

func newSessionResp(s model.Session, redirect string) sessionResp {
	return sessionResp{
		State:            s.State(),
		CurrentUserIndex: s.CurrentUserIndex,
		Username:         s.Username,
		Email:            s.Email,
		Guest:            s.IsGuest(),
		Redirect:         redirect,
	}
}
