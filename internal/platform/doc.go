package platform

// Package platform contains OS integration helpers: filesystem setup,
// descriptor discovery, and opening files in the system file manager or
// default application.
