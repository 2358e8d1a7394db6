package constvars

const (
	MongoCollectionUsers           = "users"
	MongoCollectionCompanies       = "companies"
	MongoCollectionCustomers       = "customers"
	MongoCollectionProducts        = "products"
	MongoCollectionStockMovements  = "stock_movements"
	MongoCollectionAppointments    = "appointments"
	MongoCollectionCategories      = "financial_categories"
	MongoCollectionTransactions    = "transactions"
	MongoCollectionPayables        = "payables"
	MongoCollectionReceivables     = "receivables"
	MongoCollectionInvoices        = "invoices"
	MongoCollectionBusinessConfigs = "business_configs"
)

const (
	RedisSessionKeyFormat     = "session:%s"
	RedisBookingLockKeyFormat = "lock:booking:%s:%s:%s"
	RedisConfigCacheKeyFormat = "config:%s"
)
