// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Wisling

package store

const (
	createCompany = `INSERT INTO companies (slug, name, portal_password_hash, password_salt) 
    VALUES ($1, $2, $3, $4) 
    RETURNING company_id, slug, name, portal_password_hash, password_salt, created_at;`

	findCompanyBySlug = `SELECT company_id, slug, name, portal_password_hash, password_salt, created_at 
    FROM companies 
    WHERE slug = $1;`

	createCase = `INSERT INTO cases (company_id, reference, reporter_id, title, description, status) 
    VALUES ($1, $2, $3, $4, $5, $6) 
    RETURNING case_id, company_id, reference, reporter_id, title, description, status, created_at, updated_at;`

	findCaseByID = `SELECT case_id, company_id, reference, reporter_id, title, description, status, created_at, updated_at 
    FROM cases 
    WHERE case_id = $1;`

	updateCaseStatus = `UPDATE cases 
    SET status = $2, updated_at = NOW() 
    WHERE case_id = $1 
    RETURNING case_id, company_id, reference, reporter_id, title, description, status, created_at, updated_at;`

	addCaseMessage = `INSERT INTO case_messages (case_id, author_role, body) 
    VALUES ($1, $2, $3) 
    RETURNING message_id, case_id, author_role, body, created_at;`

	listCaseMessages = `SELECT message_id, case_id, author_role, body, created_at 
    FROM case_messages 
    WHERE case_id = $1 
    ORDER BY created_at;`
)
