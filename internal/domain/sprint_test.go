package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"backend", "backend"},
		{"Backend", "backend"},
		{"mobile apps", "mobile_apps"},
		{"front-end", "front_end"},
		{"  QA Team ", "qa_team"},
		{"Data-Eng Platform", "data_eng_platform"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeLabel(tc.in), "input %q", tc.in)
	}
}
