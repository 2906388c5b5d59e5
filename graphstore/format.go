package graphstore

import (
	"fmt"
	"strings"

	"github.com/lexgraph/lexgraph/model"
)

// NoCaseFoundMessage is returned when a case id has no record in the graph.
const NoCaseFoundMessage = "No case found with the given ID."

// FormatCaseDetails renders a case record into the flattened text block
// consumed by prompt assembly. Field order and labels are fixed; absent
// values render as "Unknown".
func FormatCaseDetails(record *model.CaseRecord) string {
	if record == nil || record.Case == nil {
		return NoCaseFoundMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Case: %s\n", record.Property("case_name"))
	fmt.Fprintf(&b, "Date Filed: %s\n", record.Property("date_filed"))
	fmt.Fprintf(&b, "Court: %s\n", model.NodeProperty(record.Court, "short_name"))
	fmt.Fprintf(&b, "Judges: %s\n", joinNames(record.Judges, "name"))
	fmt.Fprintf(&b, "Author: %s\n", model.NodeProperty(record.Author, "name"))
	fmt.Fprintf(&b, "Attorneys: %s\n", joinNames(record.Attorneys, "name"))
	fmt.Fprintf(&b, "Plaintiff: %s\n", model.NodeProperty(record.Plaintiff, "name"))
	fmt.Fprintf(&b, "Defendant: %s\n", model.NodeProperty(record.Defendant, "name"))
	fmt.Fprintf(&b, "Citations: %s\n", joinNames(record.Citations, "text"))
	fmt.Fprintf(&b, "Opinion Type: %s\n", model.NodeProperty(record.Opinion, "type"))
	fmt.Fprintf(&b, "Docket Number: %s\n", model.NodeProperty(record.Docket, "id"))

	return b.String()
}

// FormatGraphResults renders relationship rows as a bullet list:
//
//	- Entity (Type)
//	  RELATION Related (Type)
//
// Rows without a relationship render the entity line only.
func FormatGraphResults(results []model.GraphResult) string {
	formatted := make([]string, 0, len(results))
	for _, result := range results {
		entityName := result.Entity.Name
		if entityName == "" {
			entityName = "Unknown"
		}
		line := fmt.Sprintf("- %s (%s)", entityName, result.Entity.PrimaryLabel())

		if result.RelationType != "" && result.Related != nil {
			relatedName := result.Related.Name
			if relatedName == "" {
				relatedName = "Unknown"
			}
			line += fmt.Sprintf("\n  %s %s (%s)", result.RelationType, relatedName, result.Related.PrimaryLabel())
		}

		formatted = append(formatted, line)
	}
	return strings.Join(formatted, "\n")
}

func joinNames(nodes []*model.GraphNode, key string) string {
	names := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if name, ok := node.Properties[key].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ", ")
}
