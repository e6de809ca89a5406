// Package docs registers the Swagger document served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth": {
            "post": {
                "description": "Вход, регистрация и заполнение профиля. Поле action: login, register, complete_profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Auth",
                "parameters": [
                    {"description": "Auth data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AuthRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Session"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Перезаписывает имя, био и аватар; null очищает поле",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Update profile",
                "parameters": [
                    {"description": "Profile data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "description": "action=search ищет заполненный профиль по телефону, action=all возвращает всех пользователей",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Users",
                "parameters": [
                    {"type": "string", "description": "search или all", "name": "action", "in": "query", "required": true},
                    {"type": "string", "description": "Телефон для поиска", "name": "phone", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.PublicProfile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Создает пользователя с уже заполненным профилем",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [
                    {"description": "User data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AccountStatus"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Блокирует или разблокирует пользователя",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Block user",
                "parameters": [
                    {"description": "Block flag", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SetBlockedRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AccountStatus"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            }
        },
        "/contacts": {
            "get": {
                "description": "Контакты пользователя с последним сообщением, недавние первыми",
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "List contacts",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "user_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ContactEntry"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Повторное добавление ничего не меняет",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Add contact",
                "parameters": [
                    {"description": "Contact pair", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AddContactRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            }
        },
        "/messages": {
            "get": {
                "description": "Все сообщения между двумя пользователями, старые первыми",
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Conversation",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "user_id", "in": "query", "required": true},
                    {"type": "integer", "description": "Contact ID", "name": "contact_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ConversationMessage"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messages"],
                "summary": "Send message",
                "parameters": [
                    {"description": "Message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.SendMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SentMessage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            }
        },
        "/avatars": {
            "post": {
                "description": "Загружает картинку в S3 и возвращает ссылку для complete_profile / update_profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["avatars"],
                "summary": "Upload avatar",
                "parameters": [
                    {"description": "Avatar", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UploadAvatarRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AvatarUpload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/httputils.ErrorResponse"}}
                }
            }
        },
        "/ping": {
            "get": {
                "description": "Пингануть сервер",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Пингануть сервер",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PongResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.AddContactRequest": {
            "type": "object",
            "properties": {"contact_id": {"type": "integer"}, "user_id": {"type": "integer"}}
        },
        "handler.AuthRequest": {
            "type": "object",
            "properties": {
                "action": {"type": "string", "example": "login"},
                "avatar": {"type": "string"},
                "bio": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string", "example": "p1"},
                "phone": {"type": "string", "example": "+10000000001"},
                "phone_contact": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "handler.CreateUserRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "password": {"type": "string"}, "phone": {"type": "string"}}
        },
        "handler.PongResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.SendMessageRequest": {
            "type": "object",
            "properties": {"content": {"type": "string"}, "receiver_id": {"type": "integer"}, "sender_id": {"type": "integer"}}
        },
        "handler.SetBlockedRequest": {
            "type": "object",
            "properties": {"is_blocked": {"type": "boolean"}, "user_id": {"type": "integer"}}
        },
        "handler.SuccessResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "handler.UpdateProfileRequest": {
            "type": "object",
            "properties": {"avatar": {"type": "string"}, "bio": {"type": "string"}, "name": {"type": "string"}, "user_id": {"type": "integer"}}
        },
        "handler.UploadAvatarRequest": {
            "type": "object",
            "properties": {"content_type": {"type": "string", "example": "image/png"}, "data": {"type": "string", "format": "base64"}, "user_id": {"type": "integer"}}
        },
        "httputils.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "model.AccountStatus": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "is_blocked": {"type": "boolean"}, "name": {"type": "string"}, "phone": {"type": "string"}}
        },
        "model.AvatarUpload": {
            "type": "object",
            "properties": {"avatar": {"type": "string"}}
        },
        "model.ContactEntry": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "bio": {"type": "string"},
                "id": {"type": "integer"},
                "last_message": {"type": "string"},
                "last_message_time": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "model.ConversationMessage": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "is_read": {"type": "boolean"},
                "receiver_id": {"type": "integer"},
                "sender_avatar": {"type": "string"},
                "sender_id": {"type": "integer"},
                "sender_name": {"type": "string"}
            }
        },
        "model.Profile": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "bio": {"type": "string"},
                "id": {"type": "integer"},
                "is_admin": {"type": "boolean"},
                "is_profile_completed": {"type": "boolean"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "model.PublicProfile": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "bio": {"type": "string"},
                "id": {"type": "integer"},
                "is_blocked": {"type": "boolean"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "model.SentMessage": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "receiver_id": {"type": "integer"},
                "sender_id": {"type": "integer"}
            }
        },
        "model.Session": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "bio": {"type": "string"},
                "id": {"type": "integer"},
                "is_admin": {"type": "boolean"},
                "is_blocked": {"type": "boolean"},
                "is_profile_completed": {"type": "boolean"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Phonebook Messenger",
	Description:      "Регистрация по номеру телефона, контакты и переписка.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
