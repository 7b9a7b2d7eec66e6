package road

// PassageCounter 通过车辆计数器
// 功能：记录从道路驶离路口的车辆数，只增不减，可整体清零
type PassageCounter struct {
	passed int
}

// Increment 计数加一
func (c *PassageCounter) Increment() {
	c.passed++
}

// Reset 计数清零
func (c *PassageCounter) Reset() {
	c.passed = 0
}

// Get 获取当前计数
func (c *PassageCounter) Get() int {
	return c.passed
}
