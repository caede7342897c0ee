package gym

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/gymdesk"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/.well-known/jwks.json": {
            "get": {
                "description": "Returns the JSON Web Key Set used to verify session tokens.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "well-known"
                ],
                "summary": "Get JWKS",
                "responses": {
                    "200": {
                        "description": "The JSON Web Key Set",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.JWKSResponse"
                        }
                    }
                }
            }
        },
        "/livez": {
            "get": {
                "description": "Liveness probe returning uptime and version. Always 200 while the process serves requests.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Readiness probe checking the database and the session signing key.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {
                        "description": "status, uptime, version, checks",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "status, uptime, version, checks - service not ready",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.HealthResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/bills": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the latest bills by due date with member and package names.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bills"
                ],
                "summary": "List bills",
                "parameters": [
                    {
                        "type": "int",
                        "description": "Maximum bills (default 10, max 100)",
                        "name": "limit",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Bills",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Bill"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid limit",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Bills a member, optionally against a package. A bill created as paid gets a receipt.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bills"
                ],
                "summary": "Create a bill",
                "parameters": [
                    {
                        "description": "Bill details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.CreateBillRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created bill",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Bill"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/bills/{id}/receipt": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bills"
                ],
                "summary": "Get the receipt of a bill",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Receipt with bill, member and gym details",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Receipt"
                        }
                    },
                    "404": {
                        "description": "Bill or receipt not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/bills/{id}/status": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Marking a bill paid issues a receipt and notifies the member. Other statuses remove the receipt.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bills"
                ],
                "summary": "Change bill status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Bill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New status",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.UpdateBillStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated bill",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Bill"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Member count, this month's revenue, pending and overdue bills and a six month chart.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Admin dashboard",
                "responses": {
                    "200": {
                        "description": "Dashboard",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.AdminDashboard"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/gym": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the gym shown on receipts and e-mails. Defaults to the owner's name until saved.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admins"
                ],
                "summary": "Get gym settings",
                "responses": {
                    "200": {
                        "description": "Gym settings",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.GymSettings"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admins"
                ],
                "summary": "Save gym settings",
                "parameters": [
                    {
                        "description": "Gym name, e-mail, phone and address",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.GymSettings"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Saved settings",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.GymSettings"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/members": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists the gym's members, most recent join date first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "List members",
                "responses": {
                    "200": {
                        "description": "Members",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Member"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Not an admin session",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Status defaults to active and join date to now.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "Add a member",
                "parameters": [
                    {
                        "description": "Member details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.CreateMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created member",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Member"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "E-mail already registered",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/members/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "Get a member",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Member ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Member",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Member"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Members"
                ],
                "summary": "Update a member",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Member ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.UpdateMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated member",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Member"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "E-mail already registered",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Deletes the member with their bills, receipts and notifications. Orders keep the member name.",
                "tags": [
                    "Members"
                ],
                "summary": "Delete a member",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Member ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/mfa/backup-codes": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces every backup code. Requires a current TOTP code.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MFA"
                ],
                "summary": "Regenerate backup codes",
                "parameters": [
                    {
                        "description": "TOTP code",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.TOTPCodeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "New backup codes",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.BackupCodesResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid code or MFA not enabled",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/mfa/totp/disable": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Turns MFA off and deletes the backup codes. Requires a current TOTP code.",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "MFA"
                ],
                "summary": "Disable MFA",
                "parameters": [
                    {
                        "description": "TOTP code",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.TOTPCodeRequest"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "MFA disabled"
                    },
                    "400": {
                        "description": "Invalid code or MFA not enabled",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/mfa/totp/enroll": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Generates a TOTP secret for the admin and returns it with an otpauth URL for QR codes.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MFA"
                ],
                "summary": "Enroll in TOTP MFA",
                "responses": {
                    "200": {
                        "description": "TOTP secret and otpauth URL",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.TOTPEnrollResponse"
                        }
                    },
                    "400": {
                        "description": "MFA already enabled",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/mfa/totp/verify": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Verifies the first code from the authenticator and enables MFA. Returns backup codes once.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MFA"
                ],
                "summary": "Verify TOTP code and enable MFA",
                "parameters": [
                    {
                        "description": "TOTP code",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.TOTPCodeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Backup codes (shown once)",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.BackupCodesResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid code or MFA state",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/notifications": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Stores a notification for every member in the recipient group and e-mails it.\nRecipients: all, active or pending_bills. The message is markdown.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notifications"
                ],
                "summary": "Send a notification",
                "parameters": [
                    {
                        "description": "Notification",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.SendNotificationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Delivery counts",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.SendNotificationResponse"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "No members found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the latest 50 notifications sent by the gym.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notifications"
                ],
                "summary": "List sent notifications",
                "responses": {
                    "200": {
                        "description": "Notifications",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Notification"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/orders": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "List orders",
                "responses": {
                    "200": {
                        "description": "Orders with items, newest first",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Order"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Records a sale, checking and taking stock for every item in one transaction.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "Create an order",
                "parameters": [
                    {
                        "description": "Customer and items",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.CreateOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created order",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Order"
                        }
                    },
                    "400": {
                        "description": "Validation failed or unknown products",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Insufficient stock",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/orders/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Adjusts stock and sales by the per-product quantity difference.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "Replace an order's items",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Customer and items",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.CreateOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated order",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Order"
                        }
                    },
                    "400": {
                        "description": "Validation failed or unknown products",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Insufficient stock",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Puts the stock back and removes the order.",
                "tags": [
                    "Store"
                ],
                "summary": "Delete an order",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/orders/{id}/status": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "Change order status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Order ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Status and payment status",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.UpdateOrderStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated order",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Order"
                        }
                    },
                    "400": {
                        "description": "Invalid status",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/packages": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Packages"
                ],
                "summary": "List packages",
                "responses": {
                    "200": {
                        "description": "Packages, newest first",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Package"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Packages"
                ],
                "summary": "Create a package",
                "parameters": [
                    {
                        "description": "Package details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.CreatePackageRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created package",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Package"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/packages/{id}": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Packages"
                ],
                "summary": "Update a package",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Package ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.UpdatePackageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated package",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Package"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Bills keep their amount and lose the package link.",
                "tags": [
                    "Packages"
                ],
                "summary": "Delete a package",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Package ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/products": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "List products",
                "responses": {
                    "200": {
                        "description": "Products, newest first",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Product"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "Create a product",
                "parameters": [
                    {
                        "description": "Product details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.CreateProductRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created product",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Product"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/products/{id}": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "Update a product",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.UpdateProductRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated product",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Product"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Store"
                ],
                "summary": "Delete a product",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admins"
                ],
                "summary": "Get admin profile",
                "responses": {
                    "200": {
                        "description": "Profile",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.AdminProfile"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Not an admin session",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Changes the name and phone. Omitted fields are left alone.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admins"
                ],
                "summary": "Update admin profile",
                "parameters": [
                    {
                        "description": "Name and phone",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.UpdateProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated profile",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.AdminProfile"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/reports/custom": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Builds a financial, member, payment or membership report for a date range.\nRanges: last30days, lastquarter, last6months, thisyear, custom; anything else means last month.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Custom report",
                "parameters": [
                    {
                        "description": "Report type and period",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.CustomReportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Report",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid report type or range",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/reports/export": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Renders a custom report as a CSV or XLSX attachment named report_<unix ms>.<ext>.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Export a custom report",
                "parameters": [
                    {
                        "description": "Report type, period and format",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ExportReportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Report file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid report type, range or format",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/reports/{name}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "One of overview, payments, revenue-trend, revenue-by-package, membership-distribution,\nstatus-distribution, member-stats-by-package or member-statistics.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Named report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Report name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Report body, shape depends on the name",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Invalid report type",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admin/store/analytics": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Revenue from paid orders, units sold, average order value, growth and top products.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "Store analytics",
                "responses": {
                    "200": {
                        "description": "Analytics",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.StoreAnalytics"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/admins": {
            "post": {
                "description": "Creates an admin account. Requires the operator bootstrap token; disabled when none is configured.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admins"
                ],
                "summary": "Register a gym owner",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Operator bootstrap token",
                        "name": "X-Bootstrap-Token",
                        "in": "header",
                        "required": true
                    },
                    {
                        "description": "Owner details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.CreateAdminRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created admin",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.AdminProfile"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid bootstrap token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Bootstrap disabled",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "E-mail already registered",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/auth/exchange": {
            "post": {
                "description": "Consumes the token from a sign-in link and returns a signed session token.\nAdmins with MFA enabled must also send a TOTP or backup code in \"otp\".",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Exchange a sign-in token for a session",
                "parameters": [
                    {
                        "description": "Token, portal type and optional one-time code",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ExchangeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session token and account",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid, expired or used link, or wrong one-time code",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "One-time code required",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Account suspended",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/auth/link": {
            "post": {
                "description": "E-mails a single-use sign-in link to the admin or member with this address.\nThe response is the same whether or not the account exists.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Request a sign-in link",
                "parameters": [
                    {
                        "description": "E-mail and portal type (ADMIN or MEMBER)",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.RequestLinkRequest"
                        }
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Link sent if the account exists",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid e-mail or portal type",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/bills": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "My bills",
                "responses": {
                    "200": {
                        "description": "Bills, newest first, with receipt flags",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Bill"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/dashboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Current package, outstanding balance, next bill due and the five latest bills.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "Member dashboard",
                "responses": {
                    "200": {
                        "description": "Dashboard",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.MemberDashboard"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/notifications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "My notifications",
                "responses": {
                    "200": {
                        "description": "Notifications, newest first",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Notification"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/notifications/read-all": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "Mark every notification read",
                "responses": {
                    "200": {
                        "description": "Number of notifications changed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.MarkAllReadResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/notifications/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "Delete a notification",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/notifications/{id}/read": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "Mark a notification read",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Marked read"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/orders": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "My orders",
                "responses": {
                    "200": {
                        "description": "Orders with items",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Order"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Prices come from the catalogue; the member's name is taken from their record.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "Place an order",
                "parameters": [
                    {
                        "description": "Items",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.PlaceOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Placed order",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Order"
                        }
                    },
                    "400": {
                        "description": "Validation failed or unknown products",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Insufficient stock",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/products": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The gym's products, best sellers first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "Browse the store",
                "responses": {
                    "200": {
                        "description": "Products",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Product"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "Member profile",
                "responses": {
                    "200": {
                        "description": "Profile with gym name",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.MemberProfile"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Not a member session",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Members may change their name and phone only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "Update member profile",
                "parameters": [
                    {
                        "description": "Name and phone",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/gymsdk.UpdateProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated profile",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.MemberProfile"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/receipts": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "My receipts",
                "responses": {
                    "200": {
                        "description": "Receipts",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/gymsdk.Receipt"
                            }
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/member/receipts/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Member portal"
                ],
                "summary": "Get one of my receipts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Receipt ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Receipt with bill, package and gym details",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.Receipt"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/session": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the identity carried by the bearer token.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Current session",
                "responses": {
                    "200": {
                        "description": "Session identity",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.SessionUser"
                        }
                    },
                    "401": {
                        "description": "Invalid or missing access token",
                        "schema": {
                            "$ref": "#/definitions/gymsdk.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "gymsdk.AdminDashboard": {
            "type": "object",
            "properties": {
                "totalMembers": {
                    "type": "integer"
                },
                "monthlyRevenue": {
                    "type": "string",
                    "example": "0.00"
                },
                "pendingBills": {
                    "type": "integer"
                },
                "pendingAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "overdueBills": {
                    "type": "integer"
                },
                "chartData": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gymsdk.ChartPoint"
                    }
                }
            }
        },
        "gymsdk.AdminProfile": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "mfaEnabled": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "gymsdk.BackupCodesResponse": {
            "type": "object",
            "properties": {
                "backup_codes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "gymsdk.Bill": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "memberId": {
                    "type": "string"
                },
                "memberName": {
                    "type": "string"
                },
                "memberEmail": {
                    "type": "string"
                },
                "packageId": {
                    "type": "string"
                },
                "packageName": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0.00"
                },
                "dueDate": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "paidDate": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "receipt": {
                    "type": "boolean"
                },
                "receiptId": {
                    "type": "string"
                }
            }
        },
        "gymsdk.BillSummary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0.00"
                },
                "status": {
                    "type": "string"
                },
                "packageName": {
                    "type": "string"
                },
                "dueDate": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "gymsdk.ChartPoint": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                },
                "revenue": {
                    "type": "string",
                    "example": "0.00"
                },
                "members": {
                    "type": "integer"
                }
            }
        },
        "gymsdk.CreateAdminRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "gymName": {
                    "type": "string"
                }
            }
        },
        "gymsdk.CreateBillRequest": {
            "type": "object",
            "properties": {
                "memberId": {
                    "type": "string"
                },
                "packageId": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0.00"
                },
                "dueDate": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "paidDate": {
                    "type": "string"
                },
                "paymentMethod": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "gymsdk.CreateMemberRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "joinDate": {
                    "type": "string"
                }
            }
        },
        "gymsdk.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "memberName": {
                    "type": "string"
                },
                "memberId": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gymsdk.OrderItemRequest"
                    }
                }
            }
        },
        "gymsdk.CreatePackageRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "0.00"
                },
                "billingCycle": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "gymsdk.CreateProductRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "0.00"
                },
                "stock": {
                    "type": "integer"
                }
            }
        },
        "gymsdk.CurrentPackage": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "0.00"
                },
                "billingCycle": {
                    "type": "string"
                }
            }
        },
        "gymsdk.CustomReportRequest": {
            "type": "object",
            "properties": {
                "reportType": {
                    "type": "string"
                },
                "dateRange": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string"
                }
            }
        },
        "gymsdk.DueBill": {
            "type": "object",
            "properties": {
                "billId": {
                    "type": "string"
                },
                "dueDate": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "gymsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "error_description": {
                    "type": "string"
                }
            }
        },
        "gymsdk.ExchangeRequest": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "otp": {
                    "type": "string"
                }
            }
        },
        "gymsdk.ExportReportRequest": {
            "type": "object",
            "properties": {
                "reportType": {
                    "type": "string"
                },
                "dateRange": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string"
                },
                "format": {
                    "description": "csv or xlsx",
                    "type": "string"
                }
            }
        },
        "gymsdk.GymSettings": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "gymsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {
                    "type": "string"
                },
                "signer": {
                    "type": "string"
                }
            }
        },
        "gymsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "uptime": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "checks": {
                    "$ref": "#/definitions/gymsdk.HealthChecks"
                }
            }
        },
        "gymsdk.JWKSResponse": {
            "type": "object",
            "properties": {
                "keys": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/jwtx.JWK"
                    }
                }
            }
        },
        "gymsdk.MarkAllReadResponse": {
            "type": "object",
            "properties": {
                "updated": {
                    "type": "integer"
                }
            }
        },
        "gymsdk.Member": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "joinDate": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "gymsdk.MemberDashboard": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "joinDate": {
                    "type": "string"
                },
                "currentPackage": {
                    "$ref": "#/definitions/gymsdk.CurrentPackage"
                },
                "outstandingBalance": {
                    "type": "string",
                    "example": "0.00"
                },
                "nextBillDue": {
                    "$ref": "#/definitions/gymsdk.DueBill"
                },
                "recentBills": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gymsdk.BillSummary"
                    }
                },
                "gymName": {
                    "type": "string"
                }
            }
        },
        "gymsdk.MemberProfile": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "joinDate": {
                    "type": "string"
                },
                "gymName": {
                    "type": "string"
                }
            }
        },
        "gymsdk.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "gymsdk.Notification": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "memberId": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "displayTitle": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "read": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "gymsdk.Order": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "memberId": {
                    "type": "string"
                },
                "memberName": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string",
                    "example": "0.00"
                },
                "status": {
                    "type": "string"
                },
                "paymentStatus": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gymsdk.OrderItem"
                    }
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "gymsdk.OrderItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "productId": {
                    "type": "string"
                },
                "productName": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "price": {
                    "type": "string",
                    "example": "0.00"
                }
            }
        },
        "gymsdk.OrderItemRequest": {
            "type": "object",
            "properties": {
                "productId": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                }
            }
        },
        "gymsdk.Package": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "0.00"
                },
                "billingCycle": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isActive": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "gymsdk.PlaceOrderRequest": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gymsdk.OrderItemRequest"
                    }
                }
            }
        },
        "gymsdk.Product": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "0.00"
                },
                "stock": {
                    "type": "integer"
                },
                "sales": {
                    "type": "integer"
                },
                "inStock": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "gymsdk.Receipt": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "receiptNo": {
                    "type": "string"
                },
                "billId": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0.00"
                },
                "paymentMethod": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "issuedAt": {
                    "type": "string"
                },
                "dueDate": {
                    "type": "string"
                },
                "paidDate": {
                    "type": "string"
                },
                "packageName": {
                    "type": "string"
                },
                "billingCycle": {
                    "type": "string"
                },
                "memberId": {
                    "type": "string"
                },
                "memberName": {
                    "type": "string"
                },
                "memberEmail": {
                    "type": "string"
                },
                "gym": {
                    "$ref": "#/definitions/gymsdk.GymSettings"
                }
            }
        },
        "gymsdk.RequestLinkRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "type": {
                    "description": "ADMIN or MEMBER",
                    "type": "string"
                }
            }
        },
        "gymsdk.SendNotificationRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "recipients": {
                    "type": "string"
                }
            }
        },
        "gymsdk.SendNotificationResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "recipients": {
                    "type": "integer"
                },
                "emailsSent": {
                    "type": "integer"
                },
                "emailsFailed": {
                    "type": "integer"
                }
            }
        },
        "gymsdk.SessionResponse": {
            "type": "object",
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "token_type": {
                    "type": "string"
                },
                "expires_in": {
                    "type": "integer"
                },
                "user": {
                    "$ref": "#/definitions/gymsdk.SessionUser"
                }
            }
        },
        "gymsdk.SessionUser": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "tenantId": {
                    "type": "string"
                },
                "expires": {
                    "type": "string"
                }
            }
        },
        "gymsdk.StoreAnalytics": {
            "type": "object",
            "properties": {
                "totalRevenue": {
                    "type": "string",
                    "example": "0.00"
                },
                "totalSales": {
                    "type": "integer"
                },
                "avgOrderValue": {
                    "type": "string",
                    "example": "0.00"
                },
                "revenueGrowth": {
                    "type": "number"
                },
                "topProducts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/gymsdk.TopProduct"
                    }
                },
                "activeProducts": {
                    "type": "integer"
                },
                "totalOrders": {
                    "type": "integer"
                }
            }
        },
        "gymsdk.TOTPCodeRequest": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                }
            }
        },
        "gymsdk.TOTPEnrollResponse": {
            "type": "object",
            "properties": {
                "secret": {
                    "type": "string"
                },
                "otpauth_url": {
                    "type": "string"
                },
                "issuer": {
                    "type": "string"
                },
                "account": {
                    "type": "string"
                }
            }
        },
        "gymsdk.TopProduct": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "sales": {
                    "type": "integer"
                },
                "revenue": {
                    "type": "string",
                    "example": "0.00"
                },
                "stock": {
                    "type": "integer"
                }
            }
        },
        "gymsdk.UpdateBillStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "paidDate": {
                    "type": "string"
                },
                "paymentMethod": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "gymsdk.UpdateMemberRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "joinDate": {
                    "type": "string"
                }
            }
        },
        "gymsdk.UpdateOrderStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "paymentStatus": {
                    "type": "string"
                }
            }
        },
        "gymsdk.UpdatePackageRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "0.00"
                },
                "billingCycle": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "gymsdk.UpdateProductRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "price": {
                    "type": "string",
                    "example": "0.00"
                },
                "stock": {
                    "type": "integer"
                }
            }
        },
        "gymsdk.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "jwtx.JWK": {
            "type": "object",
            "properties": {
                "kty": {
                    "type": "string"
                },
                "use": {
                    "type": "string"
                },
                "alg": {
                    "type": "string"
                },
                "kid": {
                    "type": "string"
                },
                "crv": {
                    "type": "string"
                },
                "x": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Gymdesk API",
	Description:      "Gym management API with an admin (gym owner) portal and a member portal.\n\nSign-in is passwordless: request a link, then exchange its token for a session.\nSessions are EdDSA-signed JWTs verifiable with the JWKS endpoint.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
