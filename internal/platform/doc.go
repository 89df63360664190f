// Package platform isolates OS-specific filesystem behavior, chiefly
// symlink creation with a copy fallback for Windows hosts without
// developer mode.
package platform
