package review

type Container struct {
	Handler    *Handler
	Service    Service
	Aggregator *Aggregator
}

func NewContainer(source TaskSource, mapping map[string]string) (*Container, error) {
	areaMapping, err := NewAreaMapping(mapping)
	if err != nil {
		return nil, err
	}

	aggregator := NewAggregator(areaMapping)
	service := NewService(source, aggregator)
	handler := NewHandler(service)

	return &Container{
		Handler:    handler,
		Service:    service,
		Aggregator: aggregator,
	}, nil
}
