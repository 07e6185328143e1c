package content

// topicSchema is the JSON Schema for topic pack files. Structural shape only;
// cross-field invariants (one correct option, blank/answer counts) are
// enforced by ValidateTopic after decoding.
const topicSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "title", "questions"],
  "additionalProperties": false,
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "icon": {"type": "string"},
    "difficulty": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]},
    "xp_reward": {"type": "integer", "minimum": 0},
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["type", "id", "prompt"],
        "properties": {
          "type": {
            "type": "string",
            "enum": ["multiple_choice", "open", "true_false", "order", "match", "fill_in_blank", "listen_and_write"]
          },
          "id": {"type": "string", "minLength": 1},
          "prompt": {"type": "string", "minLength": 1},
          "difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]},
          "category": {"type": "string"},
          "xp_reward": {"type": "integer", "minimum": 0},
          "explanation": {"type": "string"},
          "options": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "text"],
              "properties": {
                "id": {"type": "string"},
                "text": {"type": "string"},
                "correct": {"type": "boolean"}
              }
            }
          },
          "placeholder": {"type": "string"},
          "statement": {"type": "string"},
          "answer": {"type": ["boolean", "string"]},
          "items": {"type": "array", "items": {"type": "string"}},
          "correct_order": {"type": "array", "items": {"type": "string"}},
          "pairs": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["left", "right"],
              "properties": {
                "left": {"type": "string"},
                "right": {"type": "string"}
              }
            }
          },
          "text": {"type": "string"},
          "blanks": {"type": "array", "items": {"type": "string"}},
          "answers": {"type": "array", "items": {"type": "string"}},
          "audio_path": {"type": "string"}
        }
      }
    }
  }
}`
