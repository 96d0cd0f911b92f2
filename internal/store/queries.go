package store

const (
	loadEntitiesQuery = `
		MATCH (n:Entity {world_id: $world_id})
		RETURN n.id AS id,
			n.type AS type,
			n.name AS name,
			n.description AS description,
			n.date AS date,
			n.location AS location
		ORDER BY n.created_at, n.id
	`

	loadRelationshipsQuery = `
		MATCH (a:Entity {world_id: $world_id})-[r:RELATES_TO]->(b:Entity {world_id: $world_id})
		RETURN a.id AS source_id,
			b.id AS target_id,
			r.relation_type AS relation_type
		ORDER BY r.created_at, a.id, b.id
	`
)
