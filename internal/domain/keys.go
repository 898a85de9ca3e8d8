package domain

// KeyPrefix namespaces every clipdex key in the store.
// Overridable via storage.key_prefix in config.
const KeyPrefix = "clipdex:"
