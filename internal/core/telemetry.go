package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
// 專案全域建議都寫這裡，方便集中管理
type TraceSpanName string

const (
	SpanHttpRequest        TraceSpanName = "http_request"
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanOpsAuthMiddleware  TraceSpanName = "ops_auth_middleware"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal    MetricName = "requests_total"
	MetricHttpRequestDuration  MetricName = "request_duration_seconds"
	MetricNotifySentTotal      MetricName = "notify_sent_total"
	MetricNotifyFailTotal      MetricName = "notify_fail_total"
	MetricGroupResolutionTotal MetricName = "group_resolution_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelReason   MetricLabelName = "reason"
	MetricLabelOutcome  MetricLabelName = "outcome"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Body       string            `trace:"request.body"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
	Params     map[string]string `trace:"http.request.param"`
}

// 帳號操作（service 層）共用
type TraceAccountMeta struct {
	Op            string `trace:"account.op"`
	TelegramID    int64  `trace:"account.telegram_id"`
	RawInput      string `trace:"account.raw_input,omitempty"`
	ResolvedGroup string `trace:"account.resolved_group,omitempty"`
	Created       bool   `trace:"account.created,omitempty"`
	Notifications bool   `trace:"account.notifications,omitempty"`
	Outcome       string `trace:"account.outcome,omitempty"`
}

// 營運 API 列表查詢
type TraceUserListMeta struct {
	Page        int64 `trace:"list.page"`
	Size        int64 `trace:"list.size"`
	ResultCount int   `trace:"result.count,omitempty"`
}

// 名單快照重載
type TraceRosterMeta struct {
	Source string `trace:"roster.source"`
	Count  int    `trace:"roster.count"`
	Kept   bool   `trace:"roster.kept_previous,omitempty"`
}

// 出站訊息
type TraceNotifyMeta struct {
	ChatID  int64 `trace:"notify.chat_id"`
	HasMenu bool  `trace:"notify.has_menu"`
	Failed  bool  `trace:"notify.failed,omitempty"`
}

type TraceOpsAuthMeta struct {
	Subject  string `trace:"auth.subject,omitempty"`
	ClientIP string `trace:"net.peer.ip"`
	Status   string `trace:"auth.status"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	// request side
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanKind          string `trace:"span.kind"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}
