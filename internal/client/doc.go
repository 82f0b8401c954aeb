// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the sales-keeper API.
//
// A run executes one command (e.g. "customers get 7") through an
// [adapter.ServerAdapter] and prints the server's answer as indented JSON.
// The server applies the disclosure policy, so what is printed is already
// masked or plaintext according to the role of the logged-in employee.
package client
