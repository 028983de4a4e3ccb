// Package importers brings books from outside files into the reading list.
//
// ParseJSON understands the files written by exporters.JSONExporter as well
// as a plain array of {"title", "author", "read"} objects. Pipeline then adds
// the parsed books, counting the ones already on the list instead of failing:
//
//	parsed, err := importers.ParseJSON(file)
//	result, err := importers.NewPipeline(store).Import(ctx, parsed)
package importers
