package domain

// Voice is one selectable synthesis voice. The set is fixed at process start;
// changing it requires a deployment.
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

const DefaultVoiceID = "Ashley"

type VoiceCatalog struct {
	voices []Voice
	byID   map[string]Voice
}

func NewVoiceCatalog(voices []Voice) VoiceCatalog {
	byID := make(map[string]Voice, len(voices))
	for _, v := range voices {
		byID[v.ID] = v
	}
	return VoiceCatalog{voices: voices, byID: byID}
}

// DefaultVoiceCatalog returns the catalog of voices offered by the synthesis
// provider, in listing order.
func DefaultVoiceCatalog() VoiceCatalog {
	return NewVoiceCatalog([]Voice{
		{ID: "Ashley", Name: "Ashley", Description: "Warm, natural female"},
		{ID: "Dennis", Name: "Dennis", Description: "Smooth, calm male"},
		{ID: "Alex", Name: "Alex", Description: "Energetic, expressive male"},
		{ID: "Emma", Name: "Emma", Description: "Friendly, professional female"},
		{ID: "James", Name: "James", Description: "Deep, authoritative male"},
		{ID: "Sophia", Name: "Sophia", Description: "Soft, gentle female"},
	})
}

// Voices returns the catalog entries in their fixed listing order.
func (c VoiceCatalog) Voices() []Voice {
	return c.voices
}

// Contains reports whether id matches a catalog voice. Matching is exact and
// case-sensitive.
func (c VoiceCatalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// IDs returns every valid voice id in catalog order.
func (c VoiceCatalog) IDs() []string {
	ids := make([]string, 0, len(c.voices))
	for _, v := range c.voices {
		ids = append(ids, v.ID)
	}
	return ids
}
