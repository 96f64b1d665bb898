package complete

// Result is one raw completion candidate emitted by the generator.
type Result struct {
	Str *String
}

// Consumer receives candidate batches from a completion pass. A pass may
// deliver any number of batches; order within and across batches is the
// generator's emission order and consumers must preserve it.
type Consumer interface {
	HandleResults(results []*Result)
}
