package rules

import "github.com/starford/contentlint/internal/models"

// ProjectMinBodyLength is the minimum trimmed body length of a project entry.
const ProjectMinBodyLength = 2 * BlogMinBodyLength

// Project returns the rule set for project entries. Unlike blog posts, a
// project without an image is reported.
func Project() Set {
	return Set{
		Name: "projects",
		Rules: []Rule{
			required("title"),
			required("description"),
			{
				Name:     "technologies-list",
				Severity: models.SeverityWarning,
				Check: func(doc models.Document, _ FileChecker) (string, bool) {
					v, ok := doc.Fields.Get("technologies")
					if ok && v.IsList && len(v.List) > 0 {
						return "", false
					}
					return "technologies should be a non-empty list", true
				},
			},
			imageExists(),
			{
				Name:     "image-missing",
				Severity: models.SeverityWarning,
				Check: func(doc models.Document, _ FileChecker) (string, bool) {
					if _, ok := doc.Fields.Get("image"); ok {
						return "", false
					}
					return "no featured image specified", true
				},
			},
			{
				Name:     "links",
				Severity: models.SeverityWarning,
				Check: func(doc models.Document, _ FileChecker) (string, bool) {
					_, demo := doc.Fields.Get("demo_url")
					_, github := doc.Fields.Get("github_url")
					if demo || github {
						return "", false
					}
					return "no demo_url or github_url specified", true
				},
			},
			validURLField("demo_url"),
			validURLField("github_url"),
			minBodyLength(ProjectMinBodyLength),
		},
	}
}
