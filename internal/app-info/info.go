package app_info

// NAME name of the app to use in different situations
var NAME = "fwctl"

// VERSION current version of the app
var VERSION = "v0.1.0"
