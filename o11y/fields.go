package o11y

// FieldServiceName is the structured log field name for "service_name"
const FieldServiceName = "service_name"

// FieldEnvironment is the structured log field name for "environment"
const FieldEnvironment = "environment"

// FieldLevel is the structured log field name for "fragility_level"
const FieldLevel = "fragility_level"

// FieldColor is the structured log field name for "color"
const FieldColor = "color"

// FieldBasePath is the structured log field name for "base_path"
const FieldBasePath = "base_path"

// FieldPagesDir is the structured log field name for "pages_dir"
const FieldPagesDir = "pages_dir"

// FieldAssetsDir is the structured log field name for "assets_dir"
const FieldAssetsDir = "assets_dir"

// FieldPrerender is the structured log field name for "prerender"
const FieldPrerender = "prerender"

// FieldVersion is the structured log field name for "build_version"
const FieldVersion = "build_version"

// FieldSpanID is the structured log field name for "span_id"
const FieldSpanID = "span_id"

// FieldTraceID is the structured log field name for "trace_id"
const FieldTraceID = "trace_id"
