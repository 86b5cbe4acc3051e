package sevenzip

var ParseListing = parseListing
