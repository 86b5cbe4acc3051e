package cli

var PrintSummary = printSummary
