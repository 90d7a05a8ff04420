package rules

import (
	"fmt"

	"github.com/starford/contentlint/internal/models"
)

// BlogMinBodyLength is the minimum trimmed body length of a blog post.
const BlogMinBodyLength = 100

// Blog returns the rule set for blog posts.
func Blog() Set {
	return Set{
		Name: "blog",
		Rules: []Rule{
			required("title"),
			required("date"),
			recommended("excerpt"),
			{
				Name:     "date-format",
				Severity: models.SeverityError,
				Check: func(doc models.Document, _ FileChecker) (string, bool) {
					v, ok := doc.Fields.Get("date")
					if !ok || ValidDate(v.String()) {
						return "", false
					}
					return fmt.Sprintf("invalid date: %s", v.String()), true
				},
			},
			imageExists(),
			minBodyLength(BlogMinBodyLength),
			{
				Name:     "tags-empty",
				Severity: models.SeverityWarning,
				Check: func(doc models.Document, _ FileChecker) (string, bool) {
					v, ok := doc.Fields["tags"]
					if ok && v.IsList && len(v.List) == 0 {
						return "tags list is empty", true
					}
					return "", false
				},
			},
		},
	}
}
