// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the secure-data
// gateway.
//
// Commands:
//
//	version                      print the gateway build version
//	execute FILE...              run pipeline events read from JSON files
//	grant SECUREDATA_ID USER_ID  share a vault record with a user
//	revoke SECUREDATA_ID USER_ID take a share back
//
// execute runs the files concurrently and prints the rewritten events in
// the order the files were given.
package client
