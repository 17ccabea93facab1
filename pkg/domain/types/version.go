package types

// AppName is the service name used in logs and health responses
const AppName = "drover"

// Version is the application version, overridden at build time via ldflags
var Version = "dev"
