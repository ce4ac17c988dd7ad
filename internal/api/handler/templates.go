package handler

import "github.com/recordkeep/records-api/internal/core/schema"

// Body templates gating the mutating routes. All are checked strictly
// (exact key-set match) before the handler binds the body.
var (
	TemplateLogin = schema.Template{
		"username": schema.String,
		"password": schema.String,
	}

	TemplateInsertClient = schema.Template{
		"id":      schema.String,
		"name":    schema.String,
		"phone":   schema.String,
		"email":   schema.String,
		"address": schema.String,
	}

	TemplateUpdateClient = schema.Template{
		"phone":   schema.String,
		"email":   schema.String,
		"address": schema.String,
	}

	TemplateInsertBill = schema.Template{
		"ref":         schema.String,
		"date":        schema.String,
		"type":        schema.String,
		"description": schema.String,
		"file":        schema.String,
		"client":      schema.String,
	}

	TemplateCreateUser = schema.Template{
		"username": schema.String,
		"password": schema.String,
		"role":     schema.String,
	}

	TemplateChangePassword = schema.Template{
		"username": schema.String,
		"password": schema.String,
	}

	TemplateChangeSelfPassword = schema.Template{
		"current": schema.String,
		"new":     schema.String,
	}

	TemplateUpdateSettings = schema.Template{
		"ALLOWED_FILE_EXTENSIONS": schema.List,
		"MAX_FILE_SIZE":           schema.Number,
	}
)
