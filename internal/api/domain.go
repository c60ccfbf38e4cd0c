package api

// Domain holds the handlers that comprise the API.
type Domain struct {
	Cards   *cardsHandler
	Compose *composeHandler
}

// NewDomain creates all API handlers from the runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Cards: newCardsHandler(
			runtime.Catalog,
			runtime.Formatter,
			runtime.Logger,
			runtime.Pagination,
		),
		Compose: newComposeHandler(
			runtime.Composer,
			runtime.Logger,
			runtime.MaxInputSize,
		),
	}
}
