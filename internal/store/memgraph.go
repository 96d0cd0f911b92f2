package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/worldcrafter/lorecheck/internal/core/model"
)

// MemgraphSource reads one world's entities and relationships from the graph
// database the web application writes to. Node ordering follows creation
// time so repeated loads yield snapshots in the same iteration order.
type MemgraphSource struct {
	driver  neo4j.DriverWithContext
	worldID string
}

func NewMemgraphSource(uri, username, password, worldID string) (*MemgraphSource, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to Memgraph")
	return &MemgraphSource{driver: driver, worldID: worldID}, nil
}

func (s *MemgraphSource) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *MemgraphSource) Load(ctx context.Context) (*model.Snapshot, error) {
	params := map[string]interface{}{"world_id": s.worldID}

	snap := &model.Snapshot{
		Entities:      []model.Entity{},
		Relationships: []model.Relationship{},
	}

	result, err := neo4j.ExecuteQuery(ctx, s.driver, loadEntitiesQuery, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, fmt.Errorf("failed to load entities: %w", err)
	}
	for _, rec := range result.Records {
		entity := model.Entity{
			ID:          recordString(rec, "id"),
			Type:        model.EntityType(recordString(rec, "type")),
			Name:        recordString(rec, "name"),
			Description: recordString(rec, "description"),
			Location:    recordString(rec, "location"),
		}
		if at, ok := recordTime(rec, "date"); ok {
			entity.Date = &model.WorldTime{Time: at}
		}
		snap.Entities = append(snap.Entities, entity)
	}

	result, err = neo4j.ExecuteQuery(ctx, s.driver, loadRelationshipsQuery, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, fmt.Errorf("failed to load relationships: %w", err)
	}
	for _, rec := range result.Records {
		snap.Relationships = append(snap.Relationships, model.Relationship{
			SourceID:     recordString(rec, "source_id"),
			TargetID:     recordString(rec, "target_id"),
			RelationType: recordString(rec, "relation_type"),
		})
	}

	return snap, nil
}

func recordString(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// recordTime handles the date property arriving either as a native temporal
// value or as a stored string.
func recordTime(rec *neo4j.Record, key string) (time.Time, bool) {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch t := v.(type) {
	case time.Time:
		return t, true
	case neo4j.Date:
		return t.Time(), true
	case neo4j.LocalDateTime:
		return t.Time(), true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}
