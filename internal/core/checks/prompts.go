package checks

// Default prompt templates for the oracle-backed checks. Each can be
// overridden from config; overrides must keep the same fmt verbs.

const defaultTemporalPrompt = `You are checking narrative consistency in a fictional world.

Event A: %q, dated %s
Event B: %q, dated %s

Description of Event A:
%s

Event A's description mentions Event B. Decide whether the two dates are consistent with the narrative relation the description implies (for example, an event cannot react to another event that happens after it).

Return a JSON object:
{"consistent": true, "severity": "low|medium|high|critical", "explanation": "...", "suggested_fix": "..."}
Set "consistent" to false only if the dates cannot both be right. Return ONLY the JSON object.`

const defaultDescriptionPrompt = `You are checking narrative consistency in a fictional world.

Entity: %q (%s)

Description:
%s

Identify internal contradictions within this description alone. Do not compare against anything outside the text above. Physical impossibilities, mutually exclusive claims and self-contradicting timelines all count.

Return a JSON object:
{"contradictions": [{"detail": "...", "severity": "low|medium|high|critical", "suggested_fix": "..."}]}
Return an empty list if the description is internally consistent. Return ONLY the JSON object.`

const defaultReferencePrompt = `Extract the proper nouns from the following fictional-world text that look like named entities: people, places, events or items. Exclude generic nouns and titles.

Text:
%s

Return a JSON object:
{"names": ["...", "..."]}
Return ONLY the JSON object.`

const defaultRelationshipPrompt = `You are checking narrative consistency in a fictional world.

Entities %q and %q are linked by ALL of the following relationship types at once:
%s

Decide whether these relationship types are mutually contradictory (for example "ally" and "enemy"), as opposed to merely different facets of one relationship (for example "ally" and "mentor").

Return a JSON object:
{"contradictory": false, "severity": "low|medium|high|critical", "explanation": "...", "suggested_fix": "..."}
Return ONLY the JSON object.`
