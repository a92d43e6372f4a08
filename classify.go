package pgwire

// PostgresqlMessageKind is a coarse, total classification of an
// ErrorResponse or NoticeResponse, derived from its SQLSTATE class (the
// first two characters of Code). Every SQLSTATE class classifies to
// something: a class this table does not name classifies to
// UnknownError, which is not itself a decoding failure — an unrecognized
// SQLSTATE is a perfectly valid (if unanticipated) server response.
type PostgresqlMessageKind int

const (
	UnknownError PostgresqlMessageKind = iota
	SuccessfulCompletion
	Warning
	NoData
	SqlStatementNotYetComplete
	ConnectionException
	TriggeredActionException
	FeatureNotSupported
	InvalidTransactionInitiation
	LocatorException
	InvalidGrantor
	InvalidRoleSpecification
	DiagnosticsException
	CaseNotFound
	CardinalityViolation
	DataException
	IntegrityConstraintViolation
	InvalidCursorState
	InvalidTransactionState
	InvalidSqlStatementName
	TriggeredDataChangeViolation
	InvalidAuthorizationSpecification
	DependentPrivilegeDescriptorsStillExist
	InvalidTransactionTermination
	SqlRoutineException
	ExternalRoutineException
	ExternalRoutineInvocationException
	SavepointException
	InvalidCatalogName
	InvalidSchemaName
	TransactionRollback
	SyntaxErrorOrAccessRuleViolation
	WithCheckOptionViolation
	InsufficientResources
	ProgramLimitExceeded
	ObjectNotInPrerequisiteState
	OperatorIntervention
	SystemError
	ConfigFileError
	FdwError
	PlPgSqlError
	InternalError
)

func (k PostgresqlMessageKind) String() string {
	switch k {
	case SuccessfulCompletion:
		return "successful_completion"
	case Warning:
		return "warning"
	case NoData:
		return "no_data"
	case SqlStatementNotYetComplete:
		return "sql_statement_not_yet_complete"
	case ConnectionException:
		return "connection_exception"
	case TriggeredActionException:
		return "triggered_action_exception"
	case FeatureNotSupported:
		return "feature_not_supported"
	case InvalidTransactionInitiation:
		return "invalid_transaction_initiation"
	case LocatorException:
		return "locator_exception"
	case InvalidGrantor:
		return "invalid_grantor"
	case InvalidRoleSpecification:
		return "invalid_role_specification"
	case DiagnosticsException:
		return "diagnostics_exception"
	case CaseNotFound:
		return "case_not_found"
	case CardinalityViolation:
		return "cardinality_violation"
	case DataException:
		return "data_exception"
	case IntegrityConstraintViolation:
		return "integrity_constraint_violation"
	case InvalidCursorState:
		return "invalid_cursor_state"
	case InvalidTransactionState:
		return "invalid_transaction_state"
	case InvalidSqlStatementName:
		return "invalid_sql_statement_name"
	case TriggeredDataChangeViolation:
		return "triggered_data_change_violation"
	case InvalidAuthorizationSpecification:
		return "invalid_authorization_specification"
	case DependentPrivilegeDescriptorsStillExist:
		return "dependent_privilege_descriptors_still_exist"
	case InvalidTransactionTermination:
		return "invalid_transaction_termination"
	case SqlRoutineException:
		return "sql_routine_exception"
	case ExternalRoutineException:
		return "external_routine_exception"
	case ExternalRoutineInvocationException:
		return "external_routine_invocation_exception"
	case SavepointException:
		return "savepoint_exception"
	case InvalidCatalogName:
		return "invalid_catalog_name"
	case InvalidSchemaName:
		return "invalid_schema_name"
	case TransactionRollback:
		return "transaction_rollback"
	case SyntaxErrorOrAccessRuleViolation:
		return "syntax_error_or_access_rule_violation"
	case WithCheckOptionViolation:
		return "with_check_option_violation"
	case InsufficientResources:
		return "insufficient_resources"
	case ProgramLimitExceeded:
		return "program_limit_exceeded"
	case ObjectNotInPrerequisiteState:
		return "object_not_in_prerequisite_state"
	case OperatorIntervention:
		return "operator_intervention"
	case SystemError:
		return "system_error"
	case ConfigFileError:
		return "config_file_error"
	case FdwError:
		return "fdw_error"
	case PlPgSqlError:
		return "plpgsql_error"
	case InternalError:
		return "internal_error"
	default:
		return "unknown_error"
	}
}

// classByKind maps the SQLSTATE class prefix to the kind it classifies to.
// Classes not present here (including "34" Invalid Cursor Name, and any
// class reserved for a PostgreSQL extension this table predates) classify
// to UnknownError.
var classByKind = map[ErrorClass]PostgresqlMessageKind{
	"00": SuccessfulCompletion,
	"01": Warning,
	"02": NoData,
	"03": SqlStatementNotYetComplete,
	"08": ConnectionException,
	"09": TriggeredActionException,
	"0A": FeatureNotSupported,
	"0B": InvalidTransactionInitiation,
	"0F": LocatorException,
	"0L": InvalidGrantor,
	"0P": InvalidRoleSpecification,
	"0Z": DiagnosticsException,
	"20": CaseNotFound,
	"21": CardinalityViolation,
	"22": DataException,
	"23": IntegrityConstraintViolation,
	"24": InvalidCursorState,
	"25": InvalidTransactionState,
	"26": InvalidSqlStatementName,
	"27": TriggeredDataChangeViolation,
	"28": InvalidAuthorizationSpecification,
	"2B": DependentPrivilegeDescriptorsStillExist,
	"2D": InvalidTransactionTermination,
	"2F": SqlRoutineException,
	"38": ExternalRoutineException,
	"39": ExternalRoutineInvocationException,
	"3B": SavepointException,
	"3D": InvalidCatalogName,
	"3F": InvalidSchemaName,
	"40": TransactionRollback,
	"42": SyntaxErrorOrAccessRuleViolation,
	"44": WithCheckOptionViolation,
	"53": InsufficientResources,
	"54": ProgramLimitExceeded,
	"55": ObjectNotInPrerequisiteState,
	"57": OperatorIntervention,
	"58": SystemError,
	"F0": ConfigFileError,
	"HV": FdwError,
	"P0": PlPgSqlError,
	"XX": InternalError,
}

// PostgresqlMessage pairs a classified kind with the parsed fields behind
// it.
type PostgresqlMessage struct {
	Kind   PostgresqlMessageKind
	Params ErrorParams
}

// classify resolves params' SQLSTATE class to a PostgresqlMessageKind.
// classify is total: every ErrorParams classifies to something, falling
// back to UnknownError.
func classify(params ErrorParams) PostgresqlMessageKind {
	if kind, ok := classByKind[params.Code.Class()]; ok {
		return kind
	}
	return UnknownError
}
