package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Learning Outcome Statistics API",
        "description": "Quiz and assignment rubric statistics classified into expectation bands and rolled up per learning objective.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Statistics",
            "description": "Quiz and rubric outcome statistics"
        },
        {
            "name": "Objectives",
            "description": "Course objectives and item objective tags"
        },
        {
            "name": "Observability",
            "description": "Health, readiness and metrics"
        }
    ],
    "consumes": [
        "application/json"
    ],
    "produces": [
        "application/json"
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Observability"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Observability"
                ],
                "summary": "Readiness of Postgres and Redis",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "A dependency is unavailable"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": [
                    "Observability"
                ],
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/v1/metrics/snapshot": {
            "get": {
                "tags": [
                    "Observability"
                ],
                "summary": "Process metrics snapshot",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/quiz": {
            "post": {
                "tags": [
                    "Statistics"
                ],
                "summary": "Compute quiz statistics",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/QuizStatisticsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/quiz/{courseId}/{quizId}": {
            "post": {
                "tags": [
                    "Statistics"
                ],
                "summary": "Compute quiz statistics with stored objective tags",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "quizId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/QuizStatistic"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/quiz/export": {
            "post": {
                "tags": [
                    "Statistics"
                ],
                "summary": "Export quiz statistics",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    },
                    {
                        "name": "name",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/QuizStatisticsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Export file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid payload or format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/assignment-rubric": {
            "post": {
                "tags": [
                    "Statistics"
                ],
                "summary": "Compute assignment rubric statistics",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AssignmentRubricStatisticsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/assignment-rubric/{courseId}/{assignmentId}": {
            "post": {
                "tags": [
                    "Statistics"
                ],
                "summary": "Compute rubric statistics with stored tags and course objectives",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "assignmentId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StoredAssignmentRubricStatisticsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/statistics/assignment-rubric/export": {
            "post": {
                "tags": [
                    "Statistics"
                ],
                "summary": "Export assignment rubric statistics",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    },
                    {
                        "name": "name",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AssignmentRubricStatisticsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Export file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Invalid payload or format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/objectives": {
            "get": {
                "tags": [
                    "Objectives"
                ],
                "summary": "List course objectives",
                "parameters": [
                    {
                        "name": "dept",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Objectives"
                ],
                "summary": "Create or update the objectives of a course offering",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpsertCourseObjectivesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/objectives/{id}": {
            "put": {
                "tags": [
                    "Objectives"
                ],
                "summary": "Replace the objective list of a course offering",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ReplaceObjectivesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/objectives/course/{courseId}": {
            "get": {
                "tags": [
                    "Objectives"
                ],
                "summary": "Objectives of a platform course",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/objectives/department/{dept}/{num}": {
            "get": {
                "tags": [
                    "Objectives"
                ],
                "summary": "Objectives of a department course number",
                "parameters": [
                    {
                        "name": "dept",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "num",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/objectives/matches/quiz/{courseId}/{quizId}": {
            "get": {
                "tags": [
                    "Objectives"
                ],
                "summary": "Stored objective tags of a quiz",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "quizId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Objectives"
                ],
                "summary": "Store objective tags of a quiz",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "quizId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ObjectiveMatchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Unknown objective or invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/objectives/matches/assignment/{courseId}/{assignmentId}": {
            "get": {
                "tags": [
                    "Objectives"
                ],
                "summary": "Stored objective tags of a assignment",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "assignmentId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Objectives"
                ],
                "summary": "Store objective tags of a assignment",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "assignmentId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ObjectiveMatchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Unknown objective or invalid payload",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "AnswerStatistic": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "correct": {
                    "type": "boolean"
                },
                "responses": {
                    "type": "integer"
                },
                "user_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "AnswerSetStatistic": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "answers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/AnswerStatistic"
                    }
                }
            }
        },
        "QuestionStatistic": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "question_type": {
                    "type": "string",
                    "enum": [
                        "multiple_choice_question",
                        "true_false_question",
                        "multiple_answers_question",
                        "fill_in_multiple_blanks_question",
                        "multiple_dropdowns_question",
                        "essay_question",
                        "numerical_question",
                        "short_answer_question"
                    ]
                },
                "question_text": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "responses": {
                    "type": "integer"
                },
                "answers": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/AnswerStatistic"
                    }
                },
                "answer_sets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/AnswerSetStatistic"
                    }
                },
                "difficulty_index": {
                    "type": "number"
                },
                "correct": {
                    "type": "integer"
                },
                "incorrect": {
                    "type": "integer"
                },
                "partially_correct": {
                    "type": "integer"
                },
                "full_credit": {
                    "type": "integer"
                }
            }
        },
        "SubmissionStatistics": {
            "type": "object",
            "properties": {
                "scores": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "score_average": {
                    "type": "number"
                },
                "score_high": {
                    "type": "number"
                },
                "score_low": {
                    "type": "number"
                }
            }
        },
        "QuizStatistic": {
            "type": "object",
            "properties": {
                "submission_statistics": {
                    "$ref": "#/definitions/SubmissionStatistics"
                },
                "question_statistics": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/QuestionStatistic"
                    }
                }
            }
        },
        "QuizStatisticsRequest": {
            "type": "object",
            "properties": {
                "submission_statistics": {
                    "$ref": "#/definitions/SubmissionStatistics"
                },
                "question_statistics": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/QuestionStatistic"
                    }
                },
                "objectives": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "RubricRating": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "ratingPoints": {
                    "type": "number"
                }
            }
        },
        "RubricCriterion": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "maxCategoryPoints": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "ratings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/RubricRating"
                    }
                }
            }
        },
        "CriterionScore": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "points": {
                    "type": "number"
                }
            }
        },
        "SubmissionScore": {
            "type": "object",
            "properties": {
                "canvasAssignmentScore": {
                    "type": "number"
                },
                "rubricCategoryScores": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/CriterionScore"
                    }
                }
            }
        },
        "StoredAssignmentRubricStatisticsRequest": {
            "type": "object",
            "properties": {
                "criteria": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/RubricCriterion"
                    }
                },
                "submissions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/SubmissionScore"
                    }
                }
            }
        },
        "AssignmentRubricStatisticsRequest": {
            "type": "object",
            "properties": {
                "criteria": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/RubricCriterion"
                    }
                },
                "submissions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/SubmissionScore"
                    }
                },
                "objectives": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                },
                "objective_universe": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "UpsertCourseObjectivesRequest": {
            "type": "object",
            "properties": {
                "dept_abbrev": {
                    "type": "string"
                },
                "course_num": {
                    "type": "integer"
                },
                "semester": {
                    "type": "string",
                    "enum": [
                        "Fall",
                        "Spring",
                        "Summer",
                        "Winter"
                    ]
                },
                "year": {
                    "type": "integer"
                },
                "course_internal_id": {
                    "type": "integer"
                },
                "objectives": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            },
            "required": [
                "dept_abbrev",
                "course_num",
                "semester",
                "year",
                "course_internal_id",
                "objectives"
            ]
        },
        "ReplaceObjectivesRequest": {
            "type": "object",
            "properties": {
                "objectives": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            },
            "required": [
                "objectives"
            ]
        },
        "ObjectiveMatchRequest": {
            "type": "object",
            "properties": {
                "objectives": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            },
            "required": [
                "objectives"
            ]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
