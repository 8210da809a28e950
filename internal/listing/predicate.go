package listing

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

const likeEscape = '!'

// Conditions is an AND-list of optional predicates. Adding nil is a no-op so
// builders can append unconditionally.
type Conditions struct {
	parts sq.And
}

func (c *Conditions) Add(p sq.Sqlizer) {
	if p == nil {
		return
	}
	c.parts = append(c.parts, p)
}

func (c *Conditions) Len() int {
	return len(c.parts)
}

// ToSql renders the conjunction. An empty list renders as an empty string.
func (c *Conditions) ToSql() (string, []any, error) {
	if len(c.parts) == 0 {
		return "", nil, nil
	}
	return c.parts.ToSql()
}

// Apply folds the conditions into a gorm query.
func (c *Conditions) Apply(q *gorm.DB) (*gorm.DB, error) {
	sql, args, err := c.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build predicate: %w", err)
	}
	if sql == "" {
		return q, nil
	}
	return q.Where(sql, args...), nil
}

// EscapeLike escapes LIKE wildcards in a user supplied term.
func EscapeLike(term string) string {
	var b strings.Builder
	for _, r := range term {
		if r == '%' || r == '_' || r == likeEscape {
			b.WriteRune(likeEscape)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsFold matches rows where any of the expressions contains term,
// ignoring case. A blank term yields nil.
func ContainsFold(term string, exprs ...string) sq.Sqlizer {
	if strings.TrimSpace(term) == "" || len(exprs) == 0 {
		return nil
	}
	pattern := LikePattern(term)
	or := make(sq.Or, 0, len(exprs))
	for _, e := range exprs {
		or = append(or, Like(e, pattern))
	}
	return or
}

// LikePattern turns a search term into a lower-cased substring pattern.
func LikePattern(term string) string {
	return "%" + EscapeLike(strings.ToLower(strings.TrimSpace(term))) + "%"
}

// LikeClause is the SQL for a case-folded LIKE with one placeholder.
func LikeClause(expr string) string {
	return fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '%c'", expr, likeEscape)
}

func Like(expr, pattern string) sq.Sqlizer {
	return sq.Expr(LikeClause(expr), pattern)
}

// Exists wraps a correlated subquery.
func Exists(subquery string, args ...any) sq.Sqlizer {
	return sq.Expr("EXISTS ("+subquery+")", args...)
}

func NotExists(subquery string, args ...any) sq.Sqlizer {
	return sq.Expr("NOT EXISTS ("+subquery+")", args...)
}
