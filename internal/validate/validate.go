package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

const (
	MaxTitleLen   = 200
	MaxContentLen = 64 * 1024
	MaxCommentLen = 2000
	MaxQueryLen   = 128
)

func Draft(title, content string) error {
	var errs = []error{}

	errs = append(errs, Title(title))

	if l := len(content); l == 0 {
		errs = append(errs, errors.New("empty content"))
	} else if l > MaxContentLen {
		errs = append(errs, fmt.Errorf("content too long; max %d bytes", MaxContentLen))
	}

	return errors.Join(errs...)
}

func Title(title string) error {
	if l := len(strings.TrimSpace(title)); l == 0 {
		return errors.New("empty title")
	} else if l > MaxTitleLen {
		return fmt.Errorf("title too long; max %d characters", MaxTitleLen)
	}
	return nil
}

func Comment(content string) error {
	if l := len(strings.TrimSpace(content)); l == 0 {
		return errors.New("empty comment")
	} else if l > MaxCommentLen {
		return fmt.Errorf("comment too long; max %d characters", MaxCommentLen)
	}
	return nil
}

func Query(q string) error {
	if len(q) > MaxQueryLen {
		return fmt.Errorf("query too long; max %d characters", MaxQueryLen)
	}
	return nil
}

func LoginForm(email, password string) error {
	var errs = []error{}

	if len(email) == 0 {
		errs = append(errs, errors.New("empty email"))
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, err)
	}

	if len(password) == 0 {
		errs = append(errs, errors.New("empty password"))
	}

	return errors.Join(errs...)
}
