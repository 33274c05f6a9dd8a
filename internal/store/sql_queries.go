// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitrii Kuznetsov

package store

const (
	createUser = `INSERT INTO users (username, name, email, hashed_password, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, username, name, email, hashed_password, created_at;`

	findUserByUsername = `SELECT id, username, name, email, hashed_password, created_at
    FROM users
    WHERE username = $1;`

	deleteUserByUsername = `DELETE FROM users
    WHERE username = $1;`

	createMemory = `INSERT INTO memories (user_id, content, created_at)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, content, created_at;`

	createAsset = `INSERT INTO assets (user_id, filename, filepath, description, uploaded_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, user_id, filename, filepath, description, uploaded_at;`

	getAssetByID = `SELECT id, user_id, filename, filepath, description, uploaded_at
    FROM assets
    WHERE user_id = $1 AND id = $2;`
)
