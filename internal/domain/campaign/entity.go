package campaign

import (
	"errors"
	"strings"
)

var ErrEmptyCampaignCode = errors.New("campaign code cannot be empty")

// Campaign is a course-linked discount program. It is read-only once fetched.
type Campaign struct {
	code       string
	courseName string
}

func NewCampaign(code, courseName string) (*Campaign, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCampaignCode
	}
	return &Campaign{code: code, courseName: courseName}, nil
}

func (c *Campaign) Code() string       { return c.code }
func (c *Campaign) CourseName() string { return c.courseName }
