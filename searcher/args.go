package searcher

// Search parameters

const DefaultDepth = 10 // Plies searched when no depth is given

const DefaultEvaluator = "piece-count"
