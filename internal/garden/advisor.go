package garden

// Advisor composes a Resolver and a Renderer into the full raw input
// to advice text flow.
type Advisor struct {
	resolver *Resolver
	renderer *Renderer
}

// NewAdvisor creates an advisor over the default tables.
func NewAdvisor() *Advisor {
	return &Advisor{
		resolver: NewResolver(),
		renderer: NewRenderer(),
	}
}

// Advise resolves both raw fields and, when both are valid, renders
// the advice text. On any validation error it returns the accumulated
// errors and no text.
func (a *Advisor) Advise(rawSeason, rawPlant string) (string, []error) {
	result := a.resolver.Resolve(&rawSeason, &rawPlant)
	if len(result.Errors) > 0 {
		return "", result.Errors
	}

	return a.renderer.Render(result.Season, result.Plant), nil
}
