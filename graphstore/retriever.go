package graphstore

import (
	"context"
	"log/slog"

	"github.com/lexgraph/lexgraph/model"
)

// Cypher executed per extracted entity: substring match on node names,
// one optional hop in either direction, bounded fanout.
const relatedEntitiesQuery = `
MATCH (e)
WHERE e.name CONTAINS $entity_name
OPTIONAL MATCH (e)-[r]-(related)
RETURN e as entity, type(r) as relationship_type, related
LIMIT $limit
`

// Fixed multi-hop traversal assembling a case record. Every hop is
// optional so a sparse case still returns a row.
const caseDetailsQuery = `
MATCH (c:Case {id: $case_id})
OPTIONAL MATCH (c)-[:DECIDED_BY]->(j:Judge)
OPTIONAL MATCH (c)-[:AUTHORED_BY]->(a:Judge)
OPTIONAL MATCH (c)-[:HEARD_IN]->(ct:Court)
OPTIONAL MATCH (c)-[:REPRESENTED_BY]->(att:Attorney)
OPTIONAL MATCH (p:Party)-[:FILED_CASE]->(c)
OPTIONAL MATCH (c)-[:AGAINST]->(d:Party)
OPTIONAL MATCH (c)-[:CITED_BY]->(cit:Citation)
OPTIONAL MATCH (c)-[:HAS_OPINION]->(o:Opinion)
OPTIONAL MATCH (c)-[:HAS_DOCKET]->(docket:Docket)
RETURN c, collect(DISTINCT j) as judges, a as author, ct as court,
       collect(DISTINCT att) as attorneys, p as plaintiff, d as defendant,
       collect(DISTINCT cit) as citations, o as opinion, docket
`

// Retriever fetches related graph nodes for query entities and assembles
// case records for Case-labeled results.
type Retriever struct {
	store  Store
	fanout int
	log    *slog.Logger
}

// NewRetriever creates a graph retriever with the given fanout cap per
// entity.
func NewRetriever(store Store, fanout int, logger *slog.Logger) *Retriever {
	if fanout <= 0 {
		fanout = model.DefaultQueryConfig().GraphFanout
	}
	return &Retriever{
		store:  store,
		fanout: fanout,
		log:    logger,
	}
}

// FindRelated returns up to the configured fanout of (entity,
// relationship, related) rows for nodes whose name contains the entity
// substring. Matching is containment, not equality.
func (r *Retriever) FindRelated(ctx context.Context, entity string) ([]model.GraphResult, error) {
	records, err := r.store.StructuredQuery(ctx, relatedEntitiesQuery, map[string]interface{}{
		"entity_name": entity,
		"limit":       r.fanout,
	})
	if err != nil {
		return nil, err
	}

	results := make([]model.GraphResult, 0, len(records))
	for _, record := range records {
		entityNode := NodeFromRecord(record, "entity")
		if entityNode == nil {
			continue
		}
		results = append(results, model.GraphResult{
			Entity:       entityNode,
			RelationType: StringFromRecord(record, "relationship_type"),
			Related:      NodeFromRecord(record, "related"),
		})
	}

	return results, nil
}

// GetCaseDetails assembles the full case record for a case id. Returns
// nil when the case does not exist. Missing optional hops leave the
// corresponding fields nil.
func (r *Retriever) GetCaseDetails(ctx context.Context, caseID string) (*model.CaseRecord, error) {
	records, err := r.store.StructuredQuery(ctx, caseDetailsQuery, map[string]interface{}{
		"case_id": caseID,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	record := records[0]
	caseNode := NodeFromRecord(record, "c")
	if caseNode == nil {
		return nil, nil
	}

	return &model.CaseRecord{
		Case:      caseNode,
		Judges:    NodesFromRecord(record, "judges"),
		Author:    NodeFromRecord(record, "author"),
		Court:     NodeFromRecord(record, "court"),
		Attorneys: NodesFromRecord(record, "attorneys"),
		Plaintiff: NodeFromRecord(record, "plaintiff"),
		Defendant: NodeFromRecord(record, "defendant"),
		Citations: NodesFromRecord(record, "citations"),
		Opinion:   NodeFromRecord(record, "opinion"),
		Docket:    NodeFromRecord(record, "docket"),
	}, nil
}

// Retrieve runs the relationship search for every entity and returns the
// formatted graph results plus the formatted details of every Case node
// encountered. Case details are looked up and formatted once per result
// row, not per distinct case: a case appearing in several rows yields one
// detail block per row. A backend failure for one entity is logged and
// treated as no results for that entity; the remaining entities keep
// processing.
func (r *Retriever) Retrieve(ctx context.Context, entities []string) (string, []string) {
	var graphResults []model.GraphResult
	var caseDetails []string

	for _, entity := range entities {
		results, err := r.FindRelated(ctx, entity)
		if err != nil {
			r.log.Error("Graph search failed for entity",
				slog.String("entity", entity),
				slog.Any("error", err))
			continue
		}
		graphResults = append(graphResults, results...)

		for _, result := range results {
			if !result.Entity.HasLabel("Case") {
				continue
			}
			record, err := r.GetCaseDetails(ctx, result.Entity.ID)
			if err != nil {
				r.log.Error("Case detail lookup failed",
					slog.String("case_id", result.Entity.ID),
					slog.Any("error", err))
				continue
			}
			if record != nil {
				caseDetails = append(caseDetails, FormatCaseDetails(record))
			}
		}
	}

	return FormatGraphResults(graphResults), caseDetails
}
