package listing

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
)

// Params reads listing query values. A value that fails to parse is treated
// as not supplied.
type Params url.Values

func (p Params) String(key string) string {
	return strings.TrimSpace(url.Values(p).Get(key))
}

func (p Params) Int64(key string) null.Int64 {
	n, err := strconv.ParseInt(p.String(key), 10, 64)
	if err != nil {
		return null.Int64{}
	}
	return null.Int64From(n)
}

func (p Params) Int(key string) null.Int {
	n, err := strconv.Atoi(p.String(key))
	if err != nil {
		return null.Int{}
	}
	return null.IntFrom(n)
}

func (p Params) Float(key string) null.Float64 {
	v, err := strconv.ParseFloat(p.String(key), 64)
	if err != nil {
		return null.Float64{}
	}
	return null.Float64From(v)
}

func (p Params) Bool(key string) null.Bool {
	switch strings.ToLower(p.String(key)) {
	case "true", "1", "on", "yes":
		return null.BoolFrom(true)
	case "false", "0", "off", "no":
		return null.BoolFrom(false)
	}
	return null.Bool{}
}

// Flag is a toggle: only an explicit true switches it on.
func (p Params) Flag(key string) bool {
	b := p.Bool(key)
	return b.Valid && b.Bool
}

// Date parses YYYY-MM-DD as midnight UTC.
func (p Params) Date(key string) null.Time {
	t, err := time.ParseInLocation("2006-01-02", p.String(key), time.UTC)
	if err != nil {
		return null.Time{}
	}
	return null.TimeFrom(t)
}

// Page returns the raw page and pageSize. Missing or non-positive values
// come back as 0 and are resolved by Limits.Request.
func (p Params) Page() (page, pageSize int) {
	return p.positive("page"), p.positive("pageSize")
}

func (p Params) positive(key string) int {
	n := p.Int(key)
	if !n.Valid || n.Int <= 0 {
		return 0
	}
	return n.Int
}
