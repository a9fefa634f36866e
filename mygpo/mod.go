// Package mygpo is a typed client for gpodder.net-compatible
// podcast-synchronization services.
//
// Three client kinds are available, each a superset of the previous one:
// PublicClient for unauthenticated directory access, AuthenticatedClient for
// account-level operations and DeviceClient for device-scoped subscription
// synchronization. Every operation is a single synchronous HTTP call; the
// library keeps no state beyond the credentials given at construction, so
// clients are safe for concurrent use.
package mygpo

//
// mod.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//
