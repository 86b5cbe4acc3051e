package types

// Version is overwritten at build time with -ldflags "-X ..."
var Version = "dev"

// AppName is used for temp directory prefixes and log attributes
const AppName = "iconex"
